package soap

import "fmt"

// wsdlDocument renders the service description served on GET /soap.
// address is the absolute URL of the endpoint.
func wsdlDocument(address string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<definitions name="QuickPressService"
             targetNamespace="http://quickpress.com/soap"
             xmlns="http://schemas.xmlsoap.org/wsdl/"
             xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
             xmlns:tns="http://quickpress.com/soap"
             xmlns:xsd="http://www.w3.org/2001/XMLSchema">

  <message name="AuthenticateUserRequest">
    <part name="username" type="xsd:string"/>
    <part name="password" type="xsd:string"/>
  </message>

  <message name="AuthenticateUserResponse">
    <part name="role" type="xsd:string"/>
    <part name="token" type="xsd:string"/>
    <part name="success" type="xsd:boolean"/>
    <part name="message" type="xsd:string"/>
  </message>

  <message name="ListUsersRequest">
    <part name="token" type="xsd:string"/>
  </message>

  <message name="ListUsersResponse">
    <part name="users" type="xsd:string"/>
    <part name="success" type="xsd:boolean"/>
    <part name="message" type="xsd:string"/>
  </message>

  <message name="AddUserRequest">
    <part name="token" type="xsd:string"/>
    <part name="username" type="xsd:string"/>
    <part name="password" type="xsd:string"/>
    <part name="role" type="xsd:string"/>
  </message>

  <message name="AddUserResponse">
    <part name="success" type="xsd:boolean"/>
    <part name="message" type="xsd:string"/>
    <part name="userId" type="xsd:integer"/>
  </message>

  <message name="UpdateUserRequest">
    <part name="token" type="xsd:string"/>
    <part name="userId" type="xsd:integer"/>
    <part name="username" type="xsd:string"/>
    <part name="password" type="xsd:string"/>
    <part name="role" type="xsd:string"/>
  </message>

  <message name="UpdateUserResponse">
    <part name="success" type="xsd:boolean"/>
    <part name="message" type="xsd:string"/>
  </message>

  <message name="DeleteUserRequest">
    <part name="token" type="xsd:string"/>
    <part name="userId" type="xsd:integer"/>
  </message>

  <message name="DeleteUserResponse">
    <part name="success" type="xsd:boolean"/>
    <part name="message" type="xsd:string"/>
  </message>

  <portType name="QuickPressPortType">
    <operation name="authenticateUser">
      <input message="tns:AuthenticateUserRequest"/>
      <output message="tns:AuthenticateUserResponse"/>
    </operation>
    <operation name="listUsers">
      <input message="tns:ListUsersRequest"/>
      <output message="tns:ListUsersResponse"/>
    </operation>
    <operation name="addUser">
      <input message="tns:AddUserRequest"/>
      <output message="tns:AddUserResponse"/>
    </operation>
    <operation name="updateUser">
      <input message="tns:UpdateUserRequest"/>
      <output message="tns:UpdateUserResponse"/>
    </operation>
    <operation name="deleteUser">
      <input message="tns:DeleteUserRequest"/>
      <output message="tns:DeleteUserResponse"/>
    </operation>
  </portType>

  <binding name="QuickPressBinding" type="tns:QuickPressPortType">
    <soap:binding style="rpc" transport="http://schemas.xmlsoap.org/soap/http"/>
    <operation name="authenticateUser">
      <soap:operation soapAction="authenticateUser"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
    <operation name="listUsers">
      <soap:operation soapAction="listUsers"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
    <operation name="addUser">
      <soap:operation soapAction="addUser"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
    <operation name="updateUser">
      <soap:operation soapAction="updateUser"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
    <operation name="deleteUser">
      <soap:operation soapAction="deleteUser"/>
      <input><soap:body use="literal"/></input>
      <output><soap:body use="literal"/></output>
    </operation>
  </binding>

  <service name="QuickPressService">
    <port name="QuickPressPort" binding="tns:QuickPressBinding">
      <soap:address location="%s"/>
    </port>
  </service>
</definitions>`, address)
}
